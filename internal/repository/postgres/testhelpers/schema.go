package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Migrate применяет *.up.sql по возрастанию имени
func (tdb *TestDB) Migrate(dir string) error {
	files, err := sqlFiles(dir, ".up.sql")
	if err != nil {
		return err
	}
	return execFiles(tdb.DB, files)
}

// Rollback откатывает *.down.sql в обратном порядке
func (tdb *TestDB) Rollback(dir string) error {
	files, err := sqlFiles(dir, ".down.sql")
	if err != nil {
		return err
	}
	for i, j := 0, len(files)-1; i < j; i, j = i+1, j-1 {
		files[i], files[j] = files[j], files[i]
	}
	return execFiles(tdb.DB, files)
}

// Seed очищает каталог и загружает фикстуры
func (tdb *TestDB) Seed(dir string, names ...string) error {
	if _, err := tdb.DB.Exec("TRUNCATE TABLE pois"); err != nil {
		return fmt.Errorf("truncate pois: %w", err)
	}

	files := make([]string, 0, len(names))
	for _, name := range names {
		files = append(files, filepath.Join(dir, name))
	}
	return execFiles(tdb.DB, files)
}

func sqlFiles(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func execFiles(db *sqlx.DB, files []string) error {
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("exec %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}
