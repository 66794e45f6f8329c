package readstore

import (
	"estaciona-api/internal/infra"
	"estaciona-api/internal/pkg/pgconv"
)

func wrapFindErr(err error, notFoundMsg, failMsg string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(failMsg, err)
}

func mapRows[R any, V any](rows []R, fn func(R) *V) []*V {
	out := make([]*V, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(row))
	}
	return out
}
