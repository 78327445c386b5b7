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

package regression

import (
	"fmt"
	"io"
	"strconv"

	"github.com/wrenhold/gopherboy/cartridgeloader"
	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/database"
	"github.com/wrenhold/gopherboy/digest"
	"github.com/wrenhold/gopherboy/hardware"
	"github.com/wrenhold/gopherboy/television"
)

const frameEntryID = "frame"

const (
	frameFieldCartName int = iota
	frameFieldCartHash
	frameFieldMode
	frameFieldNumFrames
	frameFieldDigest
	numFrameFields
)

// FrameRegression runs a ROM for a set number of frames and compares a
// digest of the output with the digest stored in the database.
type FrameRegression struct {
	key int

	CartLoad  cartridgeloader.Loader
	Mode      DigestMode
	NumFrames int

	// the hash of the ROM data. a changed ROM file invalidates the stored
	// digest.
	cartHash string

	digest string
}

// NewFrameRegression is the preferred method of initialisation for the
// FrameRegression type.
func NewFrameRegression(cartload cartridgeloader.Loader, mode DigestMode, numFrames int) *FrameRegression {
	return &FrameRegression{
		CartLoad:  cartload,
		Mode:      mode,
		NumFrames: numFrames,
	}
}

func deserialiseFrameEntry(fields []string) (database.Entry, error) {
	if len(fields) != numFrameFields {
		return nil, curated.Errorf("regression: frame: wrong number of fields")
	}

	reg := &FrameRegression{
		cartHash: fields[frameFieldCartHash],
		digest:   fields[frameFieldDigest],
	}

	var err error

	reg.CartLoad, err = cartridgeloader.NewLoader(fields[frameFieldCartName])
	if err != nil {
		return nil, curated.Errorf("regression: frame: %v", err)
	}

	reg.Mode, err = ParseDigestMode(fields[frameFieldMode])
	if err != nil {
		return nil, curated.Errorf("regression: frame: invalid digest mode field [%s]", fields[frameFieldMode])
	}

	reg.NumFrames, err = strconv.Atoi(fields[frameFieldNumFrames])
	if err != nil {
		return nil, curated.Errorf("regression: frame: invalid numFrames field [%s]", fields[frameFieldNumFrames])
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg FrameRegression) ID() string {
	return frameEntryID
}

// String implements the database.Entry interface.
func (reg FrameRegression) String() string {
	return fmt.Sprintf("[%s] %s [%s] frames=%d", reg.ID(), reg.CartLoad.ShortName(), reg.Mode, reg.NumFrames)
}

// Serialise implements the database.Entry interface.
func (reg *FrameRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
			reg.CartLoad.Filename,
			reg.cartHash,
			reg.Mode.String(),
			strconv.Itoa(reg.NumFrames),
			reg.digest,
		},
		nil
}

// CleanUp implements the database.Entry interface.
func (reg FrameRegression) CleanUp() error {
	return nil
}

// SetKey implements the database.Entry interface.
func (reg *FrameRegression) SetKey(key int) {
	reg.key = key
}

// GetKey implements the database.Entry interface.
func (reg FrameRegression) GetKey() int {
	return reg.key
}

// an interface for the two digest types so regress() can treat them the
// same.
type hasher interface {
	Hash() string
}

func (reg *FrameRegression) regress(newRegression bool, output io.Writer, message string) (bool, error) {
	output.Write([]byte(message))

	if err := reg.CartLoad.Load(); err != nil {
		return false, curated.Errorf("frame: %v", err)
	}

	if !newRegression && reg.CartLoad.Hash != reg.cartHash {
		return false, curated.Errorf("frame: ROM file has changed since the test was added")
	}

	tv := television.NewTelevision()
	defer tv.End()

	// a headless run is not paced to real time
	tv.SetFPSCap(false)

	var dig hasher
	switch reg.Mode {
	case DigestVideoOnly:
		dig = digest.NewVideo(tv)
	case DigestAudioOnly:
		dig = digest.NewAudio(tv)
	default:
		return false, curated.Errorf("frame: invalid digest mode (%s)", reg.Mode)
	}

	dmg := hardware.NewDMG(tv)

	if err := dmg.AttachCartridge(reg.CartLoad); err != nil {
		return false, curated.Errorf("frame: %v", err)
	}

	// a save file from a play session must not influence the digest. the
	// cartridge RAM is returned to its power-on state
	ram := dmg.Mem.Cart.RAM()
	for i := range ram {
		ram[i] = 0x00
	}

	if err := dmg.RunForFrameCount(reg.NumFrames, nil); err != nil {
		return false, curated.Errorf("frame: %v", err)
	}

	if newRegression {
		reg.cartHash = reg.CartLoad.Hash
		reg.digest = dig.Hash()
		return true, nil
	}

	return dig.Hash() == reg.digest, nil
}