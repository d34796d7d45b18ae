package workouts

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo is the postgres data access layer. Every query is scoped by user id.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}
