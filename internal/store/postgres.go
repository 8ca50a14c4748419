// internal/store/postgres.go
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/Suryateja-byte/Roomshare-sub010/internal/common/logger"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/models"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/search/geo"
)

const listingColumns = `id, title, description, city, state, price, room_type,
	amenities, house_rules, languages, lease_duration, move_in_date,
	gender_preference, household_gender, lat, lng, created_at, avg_rating`

// PostgresListingStore reads candidate listings from PostgreSQL.
type PostgresListingStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostgresListingStore(db *sql.DB, log logger.Logger) *PostgresListingStore {
	return &PostgresListingStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "listing-store"}),
	}
}

// FindCandidates fetches active listings, coarsely restricted by bounds
// when present. A wrapping rectangle (MinLng > MaxLng) turns the
// longitude clause into an OR across the antimeridian, mirroring
// geo.Bounds.ContainsLng.
func (s *PostgresListingStore) FindCandidates(ctx context.Context, bounds *geo.Bounds, limit int) ([]models.Listing, error) {
	var (
		query string
		args  []interface{}
	)

	switch {
	case bounds == nil:
		query = fmt.Sprintf(`SELECT %s FROM listings WHERE status = 'active'
			ORDER BY created_at DESC LIMIT $1`, listingColumns)
		args = []interface{}{limit}
	case bounds.Wraps:
		query = fmt.Sprintf(`SELECT %s FROM listings WHERE status = 'active'
			AND lat BETWEEN $1 AND $2 AND (lng >= $3 OR lng <= $4)
			ORDER BY created_at DESC LIMIT $5`, listingColumns)
		args = []interface{}{bounds.MinLat, bounds.MaxLat, bounds.MinLng, bounds.MaxLng, limit}
	default:
		query = fmt.Sprintf(`SELECT %s FROM listings WHERE status = 'active'
			AND lat BETWEEN $1 AND $2 AND lng BETWEEN $3 AND $4
			ORDER BY created_at DESC LIMIT $5`, listingColumns)
		args = []interface{}{bounds.MinLat, bounds.MaxLat, bounds.MinLng, bounds.MaxLng, limit}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}

	s.logger.Debug("candidates fetched", map[string]interface{}{
		"count":   len(listings),
		"bounded": bounds != nil,
	})

	return listings, nil
}

func scanListing(rows *sql.Rows) (models.Listing, error) {
	var (
		l          models.Listing
		moveIn     sql.NullTime
		genderPref sql.NullString
		household  sql.NullString
		rating     sql.NullFloat64
	)

	err := rows.Scan(
		&l.ID, &l.Title, &l.Description, &l.City, &l.State, &l.Price,
		&l.RoomType,
		pq.Array(&l.Amenities), pq.Array(&l.HouseRules), pq.Array(&l.Languages),
		&l.LeaseDuration, &moveIn, &genderPref, &household,
		&l.Location.Lat, &l.Location.Lng, &l.CreatedAt, &rating,
	)
	if err != nil {
		return models.Listing{}, err
	}

	if moveIn.Valid {
		t := moveIn.Time
		l.MoveInDate = &t
	}
	if genderPref.Valid {
		l.GenderPreference = genderPref.String
	}
	if household.Valid {
		l.HouseholdGender = household.String
	}
	if rating.Valid {
		r := rating.Float64
		l.AvgRating = &r
	}

	return l, nil
}
