package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-logistics/models"
)

const (
	createUser = `INSERT INTO users (id, first_name, last_name, email, password_hash)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, first_name, last_name, email, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
    FROM users
    WHERE id = $1;`

	createShipment = `INSERT INTO shipments (id, user_id, track_id, product_name, source, destination, expected_date, status, type)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING ` + shipmentColumns + `;`

	getShipment = `SELECT ` + shipmentColumns + `
    FROM shipments
    WHERE id = $1 AND user_id = $2;`

	countShipments = `SELECT
        COUNT(*),
        COUNT(*) FILTER (WHERE type = 'Export'),
        COUNT(*) FILTER (WHERE type = 'Import')
    FROM shipments
    WHERE user_id = $1;`

	createQuote = `INSERT INTO quotes (id, origin, destination, weight_kg, dimensions, price_minor, currency, distance_km, estimated_delivery)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING ` + quoteColumns + `;`

	getQuote = `SELECT ` + quoteColumns + `
    FROM quotes
    WHERE id = $1;`

	createNotification = `INSERT INTO notifications (id, user_id, title, type, related_entity_type, related_entity_id)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + notificationColumns + `;`

	listNotifications = `SELECT ` + notificationColumns + `
    FROM notifications
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	getNotification = `SELECT ` + notificationColumns + `
    FROM notifications
    WHERE id = $1 AND user_id = $2;`

	markNotificationRead = `UPDATE notifications
    SET is_read = TRUE
    WHERE id = $1 AND user_id = $2
    RETURNING ` + notificationColumns + `;`

	markAllNotificationsRead = `UPDATE notifications
    SET is_read = TRUE
    WHERE user_id = $1 AND is_read = FALSE;`

	deleteNotification = `DELETE FROM notifications
    WHERE id = $1 AND user_id = $2;`

	deleteNotificationsBefore = `DELETE FROM notifications
    WHERE created_at < $1;`
)

const (
	shipmentColumns     = "id, user_id, track_id, product_name, source, destination, expected_date, status, type, created_at, updated_at"
	quoteColumns        = "id, origin, destination, weight_kg, dimensions, price_minor, currency, distance_km, estimated_delivery, created_at"
	notificationColumns = "id, user_id, title, type, related_entity_type, related_entity_id, is_read, created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// shipmentFilterCondition translates a listing filter into a WHERE clause
// shared by the page query and the count query.
func shipmentFilterCondition(filter models.ShipmentFilter) sq.And {
	where := sq.And{sq.Eq{"user_id": filter.UserID}}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLikePattern(search) + "%"
		where = append(where, sq.Or{
			sq.ILike{"track_id": pattern},
			sq.ILike{"product_name": pattern},
		})
	}

	if filter.Status != "" {
		where = append(where, sq.Eq{"status": string(filter.Status)})
	}

	return where
}

// buildListShipmentsQuery returns one page of the filtered listing, newest
// first.
func buildListShipmentsQuery(filter models.ShipmentFilter) (string, []any, error) {
	return psql.
		Select(shipmentColumns).
		From("shipments").
		Where(shipmentFilterCondition(filter)).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
}

// buildCountShipmentsQuery counts every row matching the filter, ignoring
// pagination.
func buildCountShipmentsQuery(filter models.ShipmentFilter) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From("shipments").
		Where(shipmentFilterCondition(filter)).
		ToSql()
}

// buildUpdateShipmentStatusQuery sets a new status on a shipment owned by
// ownerID and returns the updated row.
func buildUpdateShipmentStatusQuery(ownerID, id string, status models.ShipmentStatus) (string, []any, error) {
	return psql.
		Update("shipments").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix("RETURNING " + shipmentColumns).
		ToSql()
}

// escapeLikePattern makes user input match literally inside a LIKE pattern.
func escapeLikePattern(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
