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

// SelectAll passes every entry in the database, in key order, to the
// onSelect function. The select process ends on the first error.
func (db *Session) SelectAll(onSelect func(Entry) error) error {
	if onSelect == nil {
		return nil
	}

	for _, key := range db.SortedKeyList() {
		if err := onSelect(db.entries[key]); err != nil {
			return err
		}
	}

	return nil
}

// SelectKeys passes the entries with the specified keys, in the order
// given, to the onSelect function. An empty keys list selects every entry
// (SelectAll() may be clearer in that case).
func (db *Session) SelectKeys(onSelect func(Entry) error, keys ...int) error {
	if len(keys) == 0 {
		return db.SelectAll(onSelect)
	}
	if onSelect == nil {
		return nil
	}

	for _, key := range keys {
		ent, err := db.Get(key)
		if err != nil {
			return err
		}
		if err := onSelect(ent); err != nil {
			return err
		}
	}

	return nil
}
