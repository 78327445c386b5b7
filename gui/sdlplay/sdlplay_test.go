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

package sdlplay

import (
	"testing"

	"github.com/wrenhold/gopherboy/gui"
	"github.com/wrenhold/gopherboy/test"
)

// the event channel is drained on the same goroutine that fills it, so a
// send into a full channel must never block.
func TestEventPushDoesNotBlock(t *testing.T) {
	scr := &SdlPlay{}
	scr.SetEventChannel(make(chan gui.Event, 2))

	// one more event than the channel has room for
	for i := 0; i < 3; i++ {
		scr.pushEvent(gui.Event{ID: gui.EventKeyboard,
			Data: gui.EventDataKeyboard{Key: "Z", Down: true}})
	}

	test.Equate(t, len(scr.eventChannel), 2)

	// the channel can be refilled once it has been drained
	<-scr.eventChannel
	scr.pushEvent(gui.Event{ID: gui.EventWindowClose})
	test.Equate(t, len(scr.eventChannel), 2)
}