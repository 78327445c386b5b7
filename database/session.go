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

package database

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/wrenhold/gopherboy/curated"
)

// Activity described the activity of the database session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityCreating
	ActivityModifying
)

// Session represents an open database file.
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]deserialiser
}

// StartSession opens the database file at path and deserialises every
// entry in it. The init function is called before the file is read and
// should register the entry types the caller expects with
// RegisterEntryType().
//
// With ActivityCreating a missing database file is not an error; with the
// other activities it is.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && activity == ActivityCreating {
			return db, nil
		}
		return nil, curated.Errorf("database: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue // for loop
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) < numLeaderFields {
			return nil, curated.Errorf("database: malformed line (%s)", line)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return nil, curated.Errorf("database: invalid key (%s)", fields[leaderFieldKey])
		}
		if _, ok := db.entries[key]; ok {
			return nil, curated.Errorf("database: duplicate key (%03d)", key)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return nil, curated.Errorf("database: unrecognised entry type (%s)", fields[leaderFieldID])
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return nil, err
		}
		ent.SetKey(key)

		db.entries[key] = ent
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("database: %v", err)
	}

	return db, nil
}

// EndSession closes the database, writing any changes back to the database
// file if commitChanges is true.
func (db *Session) EndSession(commitChanges bool) error {
	if !commitChanges {
		return nil
	}
	if db.activity == ActivityReading {
		return curated.Errorf("database: cannot commit a read-only session")
	}

	s := strings.Builder{}
	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		ser, err := ent.Serialise()
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		fields := make([]string, 0, numLeaderFields+len(ser))
		fields = append(fields, strconv.Itoa(key), ent.ID())
		fields = append(fields, ser...)

		s.WriteString(strings.Join(fields, fieldSep))
		s.WriteString("\n")
	}

	err := os.WriteFile(db.path, []byte(s.String()), 0644)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}
