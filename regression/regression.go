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

// Package regression facilitates the regression testing of emulation code.
// By adding test results to a database, the tests can be rerun automatically
// and checked for consistency.
//
// The frame test runs a ROM for a set number of frames and saves a hash of
// the video or audio output to the test database. Rerunning the test fails
// if the emulation no longer produces the same hash.
package regression

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/database"
	"github.com/wrenhold/gopherboy/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/wrenhold/gopherboy/paths"
)

// the location of the regressionDB file, relative to the resources path.
const regressionDBFile = "regressionDB"

// Regressor is the generic entry type in the regressionDB.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag causes the test result to be stored in the entry rather than
	// compared.
	//
	// message is the string to print while the regression is running. it
	// should not have a trailing newline.
	regress(newRegression bool, output io.Writer, message string) (bool, error)
}

// when starting a database session we need to register what entry types may
// be found in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(frameEntryID, deserialiseFrameEntry)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	db, err := database.StartSession(paths.ResourcePath(regressionDBFile), database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new regression test to the database. The test is run
// first in order to gather the reference result.
func RegressAdd(output io.Writer, reg Regressor) error {
	db, err := database.StartSession(paths.ResourcePath(regressionDBFile), database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	_, err = reg.regress(true, output, msg)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	output.Write([]byte(ansi.ClearLine))
	output.Write([]byte(fmt.Sprintf("\radded: %s\n", reg)))

	return db.Add(reg)
}

// RegressDelete removes an entry from the regression database. Deletion
// requires confirmation, read from the confirmation io.Reader.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key [%s]", key)
	}

	db, err := database.StartSession(paths.ResourcePath(regressionDBFile), database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	if _, err = confirmation.Read(confirm); err != nil {
		return curated.Errorf("regression: %v", err)
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		if err = db.Delete(v); err != nil {
			return curated.Errorf("regression: %v", err)
		}
		output.Write([]byte(fmt.Sprintf("deleted test #%s from regression database\n", key)))
	}

	return nil
}

// sentinel error used to cut a test run short.
const regressionStopped = "regression run stopped"

// RegressRunTests runs the tests in the regression database. An empty
// filterKeys list means that every entry is tested. With failOnError the run
// stops at the first test that returns an error.
func RegressRunTests(output io.Writer, verbose bool, failOnError bool, filterKeys []string) error {
	db, err := database.StartSession(paths.ResourcePath(regressionDBFile), database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf("regression: invalid key [%s]", k)
		}
		keys = append(keys, v)
	}
	sort.Ints(keys)

	numSucceed := 0
	numFail := 0
	numError := 0

	defer func() {
		output.Write([]byte(fmt.Sprintf("regression tests: %d succeed, %d fail", numSucceed, numFail)))
		if numError > 0 {
			output.Write([]byte(" [with errors]"))
		}
		output.Write([]byte("\n"))
	}()

	onSelect := func(ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: database entry does not satisfy Regressor interface")
		}

		msg := fmt.Sprintf("running: %s", reg)
		ok, err := reg.regress(false, output, msg)

		output.Write([]byte(ansi.ClearLine))

		if err != nil {
			numError++
			output.Write([]byte(fmt.Sprintf("\r error: %s\n", reg)))
			if verbose {
				output.Write([]byte(fmt.Sprintf("%s\n", err)))
			}
			if failOnError {
				return curated.Errorf(regressionStopped)
			}
		} else if !ok {
			numFail++
			output.Write([]byte(fmt.Sprintf("\rfailure: %s\n", reg)))
		} else {
			numSucceed++
			output.Write([]byte(fmt.Sprintf("\rsucceed: %s\n", reg)))
		}

		return nil
	}

	err = db.SelectKeys(onSelect, keys...)
	if err != nil && !curated.Is(err, regressionStopped) {
		return curated.Errorf("regression: %v", err)
	}

	return nil
}