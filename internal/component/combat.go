// component/combat.go
package component

// Health: компонент здоровья
type Health struct {
	Value int
	Max   int
}

// IsDead сообщает, что здоровье опустилось до нуля.
func (h *Health) IsDead() bool {
	return h.Value <= 0
}

// Ratio возвращает долю оставшегося здоровья, 0..1.
func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Value) / float64(h.Max)
}
