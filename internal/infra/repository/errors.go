package repository

import (
	"estaciona-api/internal/infra"

	"github.com/jackc/pgx/v5"
)

// affected maps a zero-row write to a not-found repository error.
func affected(rows int64, msg string) error {
	if rows == 0 {
		return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
