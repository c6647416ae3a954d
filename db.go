package setfont

import (
	"crypto/sha1"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/setfont/consolefont"
	"github.com/bodgit/setfont/pnm"
	_ "github.com/mattn/go-sqlite3"
)

// FontDB is a library of packed fonts stored in an SQLite database.
type FontDB struct {
	db     *sql.DB
	logger *log.Logger
}

// FontInfo describes a font stored in a FontDB.
type FontInfo struct {
	Name          string
	SHA1          string
	Width, Height int
}

func NewFontDB(file string, logger *log.Logger) (*FontDB, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS font (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, data BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &FontDB{
		db:     db,
		logger: logger,
	}, nil
}

func (db *FontDB) Close() error {
	return db.db.Close()
}

// AddFont packs the glyph sheet in file and stores it as name, replacing any
// font already stored under that name.
func (db *FontDB) AddFont(name, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	h := sha1.New()
	m, err := pnm.DecodeImage(io.TeeReader(f, h))
	if err != nil {
		return err
	}
	if _, err := io.Copy(h, f); err != nil {
		return err
	}
	sha := fmt.Sprintf("%X", h.Sum(nil))

	font, err := consolefont.Pack(m)
	if err != nil {
		return err
	}

	var existing string
	switch err := db.db.QueryRow("SELECT sha1 FROM font WHERE name = ?", name).Scan(&existing); err {
	case sql.ErrNoRows:
		if _, err := db.db.Exec("INSERT INTO font (name, sha1, width, height, data) VALUES (?, ?, ?, ?, ?)", name, sha, font.Width, font.Height, font.Data); err != nil {
			return err
		}
		db.logger.Printf("Added \"%s\" from \"%s\"\n", name, file)
	case nil:
		if existing == sha {
			db.logger.Printf("\"%s\" is unchanged\n", name)
			return nil
		}
		if _, err := db.db.Exec("UPDATE font SET sha1 = ?, width = ?, height = ?, data = ? WHERE name = ?", sha, font.Width, font.Height, font.Data, name); err != nil {
			return err
		}
		db.logger.Printf("Replaced \"%s\" from \"%s\"\n", name, file)
	default:
		return err
	}

	return nil
}

// FindFont returns the font stored as name, or nil if there is none.
func (db *FontDB) FindFont(name string) (*consolefont.Font, error) {
	var width, height int
	var data []byte
	switch err := db.db.QueryRow("SELECT width, height, data FROM font WHERE name = ?", name).Scan(&width, &height, &data); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return consolefont.New(width, height, data)
	default:
		return nil, err
	}
}

// ListFonts returns every stored font ordered by name.
func (db *FontDB) ListFonts() ([]FontInfo, error) {
	rows, err := db.db.Query("SELECT name, sha1, width, height FROM font ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fonts []FontInfo
	for rows.Next() {
		var fi FontInfo
		if err := rows.Scan(&fi.Name, &fi.SHA1, &fi.Width, &fi.Height); err != nil {
			return nil, err
		}
		fonts = append(fonts, fi)
	}

	return fonts, rows.Err()
}

// RemoveFont deletes the font stored as name. It reports whether there was
// such a font.
func (db *FontDB) RemoveFont(name string) (bool, error) {
	result, err := db.db.Exec("DELETE FROM font WHERE name = ?", name)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
