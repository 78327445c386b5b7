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

// Package gui defines the operations that can be performed on the visual
// user interface and the events it can send back. The only implementation
// is in the sdlplay sub-package.
package gui

// GUI defines the operations that can be performed on visual user
// interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...interface{}) error

	// SetEventChannel registers the channel the GUI should use to forward
	// user interaction.
	SetEventChannel(chan Event)
}

// Sentinal error returned if the GUI does not support a requested feature.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
)
