package store

import (
	"log"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open selects the backing store once for the lifetime of the process:
// postgres when a DATABASE_URL is configured, otherwise a local sqlite file.
// If the durable backend cannot be opened the process keeps running on the
// volatile in-memory store with a logged warning; the choice is never
// revisited per request.
func Open(databaseURL, sqlitePath string) Store {
	if databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			st, serr := NewGormStore(db)
			if serr == nil {
				log.Println("using postgres storage")
				return st
			}
			err = serr
		}
		log.Printf("WARNING: postgres unreachable (%v), falling back to in-memory storage", err)
		return NewMemStore()
	}

	path := sqlitePath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Printf("WARNING: cannot resolve home directory (%v), falling back to in-memory storage", err)
			return NewMemStore()
		}
		path = filepath.Join(home, ".studydeck", "studydeck.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Printf("WARNING: cannot create %s (%v), falling back to in-memory storage", filepath.Dir(path), err)
		return NewMemStore()
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err == nil {
		st, serr := NewGormStore(db)
		if serr == nil {
			return st
		}
		err = serr
	}
	log.Printf("WARNING: sqlite unreachable (%v), falling back to in-memory storage", err)
	return NewMemStore()
}
