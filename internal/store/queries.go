package store

// SQL statements for the saved_properties table.
const (
	queryInsertSaved = `
		INSERT INTO saved_properties (id, listing, analysis)
		VALUES (@id, @listing, @analysis)
		RETURNING created_at`

	queryGetSaved = `
		SELECT id, listing, analysis, created_at
		FROM saved_properties
		WHERE id = $1`

	queryListSaved = `
		SELECT id, listing, analysis, created_at
		FROM saved_properties
		ORDER BY created_at DESC`

	queryDeleteSaved = `
		DELETE FROM saved_properties
		WHERE id = $1`

	queryCountSaved = `
		SELECT COUNT(*) FROM saved_properties`

	// The advisory lock serializes concurrent saves so the cap check in
	// SaveProperty stays accurate. Released at transaction end.
	queryLockSaved = `
		SELECT pg_advisory_xact_lock(hashtext('saved_properties'))`

	queryDeleteSavedOlderThan = `
		DELETE FROM saved_properties
		WHERE created_at < $1`
)
