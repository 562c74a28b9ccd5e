/*
This package contains lowish-level APIs for making database queries to our Postgres database. It streamlines the process of mapping query results to Go types, while allowing you to write arbitrary SQL queries.

The primary functions are Query and QueryIterator.

# Query syntax

This package allows a few small extensions to SQL syntax to streamline the interaction between Go and Postgres.

Arguments can be provided using placeholders like $1, $2, etc. All arguments will be safely escaped and mapped from their Go type to the correct Postgres type. (This is a direct proxy to pgx.)

	scriptIDs, err := db.Query[int](ctx, conn,
		`
		SELECT id
		FROM script
		WHERE
			status = ANY($1)
			AND author_id = $2
		`,
		[]models.ScriptStatus{models.ScriptStatusDraft},
		authorID,
	)

(This also demonstrates a useful tip: if you want to use a slice in your query, use Postgres arrays instead of IN.)

When querying individual fields, you can simply select the field like so:

	ids, err := db.Query[int](ctx, conn, `SELECT id FROM project`)

To query multiple columns at once, you may use a struct type with `db:"column_name"` tags, and the special $columns placeholder:

	type Project struct {
		ID        int       `db:"id"`
		Name      string    `db:"name"`
		CreatedAt time.Time `db:"created_at"`
	}
	projects, err := db.Query[Project](ctx, conn, `SELECT $columns FROM ...`)
	// Resulting query:
	// SELECT id, name, created_at FROM ...

Sometimes a table name prefix is required on each column to disambiguate between column names, especially when performing a JOIN. In those situations, you can include the prefix in the $columns placeholder like $columns{prefix}:

	scripts, err := db.Query[Script](ctx, conn, `
		SELECT $columns{script}
		FROM
			script
			JOIN project ON project.id = script.project_id
		WHERE
			project.theme_id IS NOT NULL
	`)
	// Resulting query:
	// SELECT script.id, script.project_id, ... FROM ...
*/
package db
