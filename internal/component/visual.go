// component/visual.go
package component

// Explosion: короткий эффект без владельца.
type Explosion struct {
	Elapsed int
	Frames  int
}

// Done сообщает, что время жизни эффекта вышло.
func (e *Explosion) Done() bool {
	return e.Elapsed >= e.Frames
}

// Progress возвращает долю прожитого времени, 0..1.
func (e *Explosion) Progress() float64 {
	if e.Frames <= 0 {
		return 1
	}
	p := float64(e.Elapsed) / float64(e.Frames)
	if p > 1 {
		p = 1
	}
	return p
}
