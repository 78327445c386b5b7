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

// FeatureReq is used to request the setting of a gui attribute.
type FeatureReq string

// List of valid feature requests. The argument must be of the type
// specified or else the interface{} type conversion in the GUI will fail.
//
// Like the name suggests these are requests; they may or may not be
// satisfied depending on other conditions in the GUI.
const (
	// show or hide the window. bool.
	ReqSetVisibility FeatureReq = "ReqSetVisibility"

	// the amount of scaling applied to every panel pixel. float32.
	ReqSetScale FeatureReq = "ReqSetScale"

	// whether the window title shows the measured frame rate. bool.
	ReqSetFPSIndicator FeatureReq = "ReqSetFPSIndicator"

	// save the most recently completed frame to the named file. string.
	ReqScreenshot FeatureReq = "ReqScreenshot"
)
