package ui

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace возвращает встроенный моноширинный шрифт, файлы не нужны.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}
