// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store handles cloud record persistence and schema creation.

# Schema Creation

CreateSchema initializes the record table:

	if err := store.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Records

Records are named JSON payloads. The ongoing board always lives under
OngoingRecordName and is overwritten on every save; finished games are
archived under names starting with FinishedPrefix:

	s := store.New(db)
	err := s.PutRecord(store.OngoingRecordName, payload)
	names, err := s.ListRecords(store.FinishedPrefix)

GetRecord returns ErrNotFound for missing names.
*/
package store
