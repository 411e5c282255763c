package testhelpers

import (
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/repository/postgres"
)

// POIRepository - репозиторий поверх тестовой БД
func (tdb *TestDB) POIRepository() repository.POIRepository {
	return postgres.NewPOIRepository(postgres.NewDBForTest(tdb.DB, tdb.Logger))
}
