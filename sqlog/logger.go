package sqlog

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"

	"smpptime/receipt"
)

// DB stores parsed delivery receipts in a MySQL table.
type DB struct {
	db *sql.DB
}

func Connect(url string) (*DB, error) {
	db, err := sql.Open("mysql", url) //"/smpptime?charset=utf8"
	if err != nil {
		return nil, err
	}
	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, err
	}
	return &DB{db: db}, nil
}

func (db *DB) Close() error {
	return db.db.Close()
}

// Insert writes one receipt into the receipts table.
func (db *DB) Insert(r *receipt.Report) error {
	stmt, err := db.db.Prepare(`INSERT receipts SET id=?,sub=?,dlvrd=?,submit=?,done=?,stat=?,err=?,text=?`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	_, err = stmt.Exec(r.ID, r.Sub, r.Dlvrd, r.Submit, r.Done, r.Stat, r.Err, r.Text)
	return err
}
