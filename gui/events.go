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

package gui

// Events are the things that happen in the gui as a result of user
// interaction. They are sent over the registered event channel.

// EventID identifies the type of event taking place.
type EventID int

// List of valid events.
const (
	EventWindowClose EventID = iota
	EventKeyboard
)

func (id EventID) String() string {
	switch id {
	case EventWindowClose:
		return "window close"
	case EventKeyboard:
		return "keyboard"
	}
	return "unknown"
}

// EventData represents the data that is associated with an event.
type EventData interface{}

// Event is the structure that is passed over the event channel.
type Event struct {
	ID   EventID
	Data EventData
}

// EventDataKeyboard is the data that accompanies EventKeyboard events.
type EventDataKeyboard struct {
	Key  string
	Down bool
}
