package impl

import (
	"io"
	"log/slog"

	"trucktrace/internal/domain/entity"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCustomer() *entity.Principal {
	return entity.NewCustomer(&entity.User{
		ID:                       uuid.New(),
		Username:                 "hungry",
		Email:                    "hungry@example.com",
		NotificationRadiusMiles:  entity.DefaultNotificationRadiusMiles,
		PushNotificationsEnabled: true,
	})
}

func testOwner() *entity.Principal {
	user := &entity.User{ID: uuid.New(), Username: "chef", Email: "chef@example.com"}

	return entity.NewOwner(user, &entity.Truck{
		ID:           uuid.New(),
		OwnerID:      user.ID,
		BusinessName: "Chef LLC",
		TruckName:    "Taco Wheels",
	})
}
