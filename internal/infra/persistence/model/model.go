package model

// All lists every table mapping in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&FoodTruckModel{},
		&TruckCuisineModel{},
		&LocationModel{},
		&MenuItemModel{},
		&FavoriteModel{},
		&UserDeviceModel{},
	}
}
