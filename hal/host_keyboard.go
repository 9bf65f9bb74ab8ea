//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.push(KeyEvent{Press: true, Rune: r})
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		k.push(KeyEvent{Press: true, Rune: 0x03})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		k.push(KeyEvent{Code: KeyEnter, Press: true})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEnter) {
		k.push(KeyEvent{Code: KeyEnter, Press: false})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.push(KeyEvent{Code: KeyEscape, Press: true})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		k.push(KeyEvent{Code: KeyEscape, Press: false})
	}
}
