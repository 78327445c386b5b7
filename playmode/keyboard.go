// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package playmode

import (
	"github.com/wrenhold/gopherboy/gui"
	"github.com/wrenhold/gopherboy/hardware"
	"github.com/wrenhold/gopherboy/hardware/peripherals"
)

// the keyboard to button matrix mapping. the key names are those returned
// by SDL's GetKeyName.
var keyMapping = map[string]peripherals.Button{
	"Z":         peripherals.ButtonA,
	"X":         peripherals.ButtonB,
	"Backspace": peripherals.ButtonSelect,
	"Return":    peripherals.ButtonStart,
	"Up":        peripherals.ButtonUp,
	"Down":      peripherals.ButtonDown,
	"Left":      peripherals.ButtonLeft,
	"Right":     peripherals.ButtonRight,
}

// KeyboardEventHandler takes a keyboard event from the gui and presses or
// releases the corresponding console button. Unmapped keys are ignored.
func KeyboardEventHandler(ev gui.EventDataKeyboard, dmg *hardware.DMG) {
	if b, ok := keyMapping[ev.Key]; ok {
		dmg.Joypad.SetButton(b, ev.Down)
	}
}
