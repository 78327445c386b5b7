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

package television

import (
	"time"
)

// limiter paces NewFrame() calls to the specification frame rate and keeps
// a rolling measurement of the rate actually being achieved.
type limiter struct {
	frameDuration time.Duration
	deadline      time.Time

	// rolling FPS measurement
	measureFrom  time.Time
	measureCount int
	actual       float64
}

func (l *limiter) init(fps float64) {
	l.frameDuration = time.Duration(float64(time.Second) / fps)
	l.deadline = time.Now().Add(l.frameDuration)
	l.measureFrom = time.Now()
	l.actual = fps
}

// wait until the next frame deadline. if the deadline has already passed
// the function returns immediately and the new deadline is measured from
// now, preventing a backlog of "owed" frames after a stall.
func (l *limiter) wait() {
	now := time.Now()
	if now.Before(l.deadline) {
		time.Sleep(l.deadline.Sub(now))
		l.deadline = l.deadline.Add(l.frameDuration)
	} else {
		l.deadline = now.Add(l.frameDuration)
	}
}

// measure updates the actual FPS value. called once per frame.
func (l *limiter) measure() {
	l.measureCount++
	if d := time.Since(l.measureFrom); d >= time.Second {
		l.actual = float64(l.measureCount) / d.Seconds()
		l.measureCount = 0
		l.measureFrom = time.Now()
	}
}
