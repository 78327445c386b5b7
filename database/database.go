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

// Package database is a very simple way of storing structured but
// arbitrary entry types in a flat text file. It is not clever and is not
// intended to be; it exists to keep the regression database readable with
// a text editor.
//
// Use of the database requires starting a session with StartSession(),
// coupled with an EndSession() once done. The initialisation function
// passed to StartSession() registers the entry types the database file may
// contain, through RegisterEntryType(). Each line of the database file is
// a comma separated record: a numeric key, the entry type ID and then the
// fields of the entry itself, which are handed to the registered
// deserialiser for that ID.
package database

import (
	"fmt"
	"io"
	"sort"

	"github.com/wrenhold/gopherboy/curated"
)

// arbitrary maximum number of entries.
const maxEntries = 1000

const fieldSep = ","

const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db *Session) SortedKeyList() []int {
	keyList := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keyList = append(keyList, k)
	}
	sort.Ints(keyList)
	return keyList
}

// List the entries in key order.
func (db *Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]
		_, err := fmt.Fprintf(output, "%03d %s\n", key, ent.String())
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", db.NumEntries())
	return err
}

// Get returns the entry with the specified key.
func (db *Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf("database: key not available (%03d)", key)
	}
	return ent, nil
}

// Add an entry to the database. The entry is given the lowest unused key.
func (db *Session) Add(ent Entry) error {
	if db.activity == ActivityReading {
		return curated.Errorf("database: cannot add to a read-only session")
	}

	var key int
	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}
	if key == maxEntries {
		return curated.Errorf("database: maximum entries exceeded (max %d)", maxEntries)
	}

	ent.SetKey(key)
	db.entries[key] = ent

	return nil
}

// Delete the entry with the specified key.
func (db *Session) Delete(key int) error {
	if db.activity == ActivityReading {
		return curated.Errorf("database: cannot delete from a read-only session")
	}

	ent, ok := db.entries[key]
	if !ok {
		return curated.Errorf("database: key not available (%03d)", key)
	}

	if err := ent.CleanUp(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	delete(db.entries, key)

	return nil
}
