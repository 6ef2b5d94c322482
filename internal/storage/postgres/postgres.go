package postgres

import (
	"database/sql"
	"eventService/internal/config"
	"eventService/internal/models"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveEvent(event models.Event) error {
	query := `
		INSERT INTO events (id, name, description, budget, image, created_at, created_by, closed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.DB.Exec(query,
		event.ID,
		event.Name,
		event.Description,
		event.Budget,
		event.Image,
		event.CreatedAt,
		event.CreatedBy,
		event.Closed,
	)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	return nil
}

func (s *Storage) UpdateEvent(id, name, description string, date time.Time, budget float64) (int64, error) {
	query := `
		UPDATE events
		SET name = $1, description = $2, date = $3, budget = $4
		WHERE id = $5`

	result, err := s.DB.Exec(query, name, description, date, budget, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rowsAffected, nil
}

func (s *Storage) SetEventClosed(id string, closed bool) (int64, error) {
	query := `
		UPDATE events
		SET closed = $2
		WHERE id = $1`

	result, err := s.DB.Exec(query, id, closed)
	if err != nil {
		return 0, fmt.Errorf("failed to set event closed flag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rowsAffected, nil
}

func (s *Storage) ListEvents(search string) ([]models.Event, error) {
	query := `
		SELECT id, name, description, date, budget, image, created_at, closed
		FROM events
		WHERE closed = false AND name ILIKE '%' || $1 || '%'`

	rows, err := s.DB.Query(query, search)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Name,
			&event.Description,
			&event.Date,
			&event.Budget,
			&event.Image,
			&event.CreatedAt,
			&event.Closed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}
