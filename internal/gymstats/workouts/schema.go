package workouts

import _ "embed"

// Schema holds the postgres tables used by the catalog and session repos.
//
//go:embed schema.sql
var Schema string

// Tables lists the tables created by Schema, in creation order.
var Tables = []string{"exercise_definition", "workout_session", "workout_set"}
