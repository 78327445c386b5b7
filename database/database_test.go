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

package database_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/wrenhold/gopherboy/database"
	"github.com/wrenhold/gopherboy/test"
)

const testEntryID = "test"

type testEntry struct {
	key  int
	name string
}

func deserialiseTestEntry(fields []string) (database.Entry, error) {
	if len(fields) != 1 {
		return nil, fmt.Errorf("wrong number of fields (%d)", len(fields))
	}
	return &testEntry{name: fields[0]}, nil
}

func (ent *testEntry) ID() string {
	return testEntryID
}

func (ent *testEntry) String() string {
	return ent.name
}

func (ent *testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.name}, nil
}

func (ent *testEntry) CleanUp() error {
	return nil
}

func (ent *testEntry) SetKey(key int) {
	ent.key = key
}

func (ent *testEntry) GetKey() int {
	return ent.key
}

func initTestSession(db *database.Session) error {
	return db.RegisterEntryType(testEntryID, deserialiseTestEntry)
}

func TestSessionRoundTrip(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(pth, database.ActivityCreating, initTestSession)
	test.ExpectSuccess(t, err)
	test.Equate(t, db.NumEntries(), 0)

	test.ExpectSuccess(t, db.Add(&testEntry{name: "foo"}))
	test.ExpectSuccess(t, db.Add(&testEntry{name: "bar"}))
	test.Equate(t, db.NumEntries(), 2)
	test.ExpectSuccess(t, db.EndSession(true))

	// read the file back
	db, err = database.StartSession(pth, database.ActivityReading, initTestSession)
	test.ExpectSuccess(t, err)
	test.Equate(t, db.NumEntries(), 2)

	ent, err := db.Get(0)
	test.ExpectSuccess(t, err)
	test.Equate(t, ent.String(), "foo")
	test.Equate(t, ent.GetKey(), 0)

	// read-only sessions cannot change the database
	test.ExpectFailure(t, db.Delete(0))
	test.ExpectFailure(t, db.EndSession(true))
}

func TestSessionDelete(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(pth, database.ActivityCreating, initTestSession)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, db.Add(&testEntry{name: "foo"}))
	test.ExpectSuccess(t, db.Add(&testEntry{name: "bar"}))
	test.ExpectSuccess(t, db.EndSession(true))

	db, err = database.StartSession(pth, database.ActivityModifying, initTestSession)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, db.Delete(0))
	test.ExpectSuccess(t, db.EndSession(true))

	db, err = database.StartSession(pth, database.ActivityReading, initTestSession)
	test.ExpectSuccess(t, err)
	test.Equate(t, db.NumEntries(), 1)

	// the deleted key is not reused on read; the remaining entry keeps
	// its key
	ent, err := db.Get(1)
	test.ExpectSuccess(t, err)
	test.Equate(t, ent.String(), "bar")
}

func TestSelect(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(pth, database.ActivityCreating, initTestSession)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, db.Add(&testEntry{name: "foo"}))
	test.ExpectSuccess(t, db.Add(&testEntry{name: "bar"}))

	names := []string{}
	err = db.SelectAll(func(ent database.Entry) error {
		names = append(names, ent.String())
		return nil
	})
	test.ExpectSuccess(t, err)
	test.Equate(t, len(names), 2)
	test.Equate(t, names[0], "foo")
	test.Equate(t, names[1], "bar")

	err = db.SelectKeys(func(ent database.Entry) error {
		test.Equate(t, ent.String(), "bar")
		return nil
	}, 1)
	test.ExpectSuccess(t, err)

	// selecting a key that does not exist is an error
	test.ExpectFailure(t, db.SelectKeys(nil, 99))
}