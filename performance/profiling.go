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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/wrenhold/gopherboy/curated"
)

// Profile is used to specify the type of profiling required.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileBoth
)

// ParseProfile converts the command line representation to a Profile
// value.
func ParseProfile(s string) (Profile, error) {
	switch s {
	case "NONE":
		return ProfileNone, nil
	case "CPU":
		return ProfileCPU, nil
	case "MEM":
		return ProfileMem, nil
	case "BOTH":
		return ProfileBoth, nil
	}
	return ProfileNone, curated.Errorf("profiling: unknown profile type (%s)", s)
}

// RunProfiler runs the supplied function, optionally through the CPU
// profiler, writing profiles to <tag>_cpu.profile and <tag>_mem.profile.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile == ProfileCPU || profile == ProfileBoth {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", tag))
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile == ProfileMem || profile == ProfileBoth {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", tag))
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
	}

	return nil
}
