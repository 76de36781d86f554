package store

// InsertRecord appends values as a new row of the named table.
// A failed insert leaves the table unchanged.
func (s *Store) InsertRecord(tableName string, values []string) error {
	s.mu.Lock()
	err := s.insertUnsafe(tableName, values)
	s.mu.Unlock()

	s.notify(Event{Type: EventInsert, Table: tableName, Err: err, Data: len(values)})
	return err
}

func (s *Store) insertUnsafe(tableName string, values []string) error {
	t, err := s.lookupUnsafe(tableName)
	if err != nil {
		return err
	}
	return t.Insert(values)
}

// UpdateRecord overwrites the single cell at rowIndex, columnIndex
func (s *Store) UpdateRecord(tableName string, rowIndex, columnIndex int, newValue string) error {
	s.mu.Lock()
	err := s.updateUnsafe(tableName, rowIndex, columnIndex, newValue)
	s.mu.Unlock()

	s.notify(Event{Type: EventUpdate, Table: tableName, Err: err, Data: map[string]interface{}{
		"row":    rowIndex,
		"column": columnIndex,
	}})
	return err
}

func (s *Store) updateUnsafe(tableName string, rowIndex, columnIndex int, newValue string) error {
	t, err := s.lookupUnsafe(tableName)
	if err != nil {
		return err
	}
	return t.Update(rowIndex, columnIndex, newValue)
}

// DeleteRecord removes the row at rowIndex; later rows shift down by one
func (s *Store) DeleteRecord(tableName string, rowIndex int) error {
	s.mu.Lock()
	err := s.deleteUnsafe(tableName, rowIndex)
	s.mu.Unlock()

	s.notify(Event{Type: EventDelete, Table: tableName, Err: err, Data: rowIndex})
	return err
}

func (s *Store) deleteUnsafe(tableName string, rowIndex int) error {
	t, err := s.lookupUnsafe(tableName)
	if err != nil {
		return err
	}
	return t.Delete(rowIndex)
}
