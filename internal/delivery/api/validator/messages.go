package validator

import "strings"

// anyTag is the rule used when a field has no entry for the failing tag.
const anyTag = "*"

// elementSuffix keys the rules for the elements of a slice field.
const elementSuffix = "[]"

const strengthMessage = "must contain at least one uppercase letter, one lowercase letter, and one number"

// rules maps a field to the message reported for each failing tag.
var rules = map[string]map[string]string{
	"username": {
		anyTag:     "Username must be between 3 and 50 characters",
		"username": "Username can only contain letters, numbers, and underscores",
	},
	"email": {
		anyTag: "Valid email is required",
		"max":  "Email must not exceed 255 characters",
	},
	"password": {
		anyTag:              "Password must be at least 8 characters long",
		"required":          "Password is required",
		"password_strength": "Password " + strengthMessage,
	},
	"new_password": {
		anyTag:              "New password must be at least 8 characters long",
		"password_strength": "New password " + strengthMessage,
	},
	"current_password": {
		anyTag: "Current password is required",
	},
	"token": {
		anyTag: "Reset token is required",
	},
	"profile_photo_url": {
		anyTag: "Profile photo URL must be a valid URL",
		"max":  "Profile photo URL must not exceed 500 characters",
	},
	"preferred_cuisines": {
		anyTag: "Preferred cuisines must be an array",
	},
	"notification_radius_miles": {
		anyTag: "Notification radius must be between 1 and 50 miles",
	},
	"push_notifications_enabled": {
		anyTag: "Push notifications enabled must be a boolean",
	},
	"business_name": {
		anyTag: "Business name must be between 2 and 255 characters",
	},
	"truck_name": {
		anyTag: "Truck name must be between 2 and 255 characters",
	},
	"cuisine_types": {
		anyTag: "At least one cuisine type must be selected",
	},
	"cuisine_types[]": {
		anyTag: "Each cuisine type must be between 1 and 100 characters",
	},
	"description": {
		anyTag: "Description must not exceed 1000 characters",
	},
	"logo_url": {
		anyTag: "Logo URL must be a valid URL",
		"max":  "Logo URL must not exceed 500 characters",
	},
	"cover_photo_url": {
		anyTag: "Cover photo URL must be a valid URL",
		"max":  "Cover photo URL must not exceed 500 characters",
	},
	"contact_phone": {
		anyTag: "Valid phone number is required",
	},
	"social_links": {
		anyTag: "Social links must be an object",
	},
	"lat": {
		anyTag: "Valid latitude is required (-90 to 90)",
	},
	"latitude": {
		anyTag: "Valid latitude is required (-90 to 90)",
	},
	"lng": {
		anyTag: "Valid longitude is required (-180 to 180)",
	},
	"longitude": {
		anyTag: "Valid longitude is required (-180 to 180)",
	},
	"radius": {
		anyTag: "Radius must be between 0.5 and 50 miles",
	},
	"address": {
		anyTag: "Address must not exceed 255 characters",
	},
	"scheduled_start": {
		anyTag: "Valid start date is required",
	},
	"scheduled_end": {
		anyTag: "Valid end date is required",
	},
	"is_current": {
		anyTag: "is_current must be a boolean",
	},
	"status": {
		anyTag: "Status must be one of: open, closing_soon, closed",
	},
	"include_scheduled": {
		anyTag: "include_scheduled must be a boolean",
	},
	"truck_id": {
		anyTag: "Valid truck ID is required",
	},
	"id": {
		anyTag: "Valid ID is required",
	},
	"limit": {
		anyTag: "Limit must be a positive integer",
	},
	"name": {
		anyTag: "Name must be between 1 and 255 characters",
	},
	"price": {
		anyTag:     "Price must be a non-negative number",
		"required": "Price is required",
		"max":      "Price must not exceed 99999999.99",
	},
	"category": {
		anyTag: "Category must not exceed 100 characters",
	},
	"photo_url": {
		anyTag: "Photo URL must be a valid URL",
		"max":  "Photo URL must not exceed 500 characters",
	},
	"is_available": {
		anyTag: "is_available must be a boolean",
	},
	"is_signature": {
		anyTag: "is_signature must be a boolean",
	},
	"dietary_tags": {
		anyTag: "Dietary tags must be an array",
	},
	"fcm_token": {
		anyTag: "FCM token is required",
		"max":  "FCM token must not exceed 255 characters",
	},
	"device_id": {
		anyTag: "Device ID is required",
	},
	"platform": {
		anyTag: "Platform must be one of: ios, android, web",
	},
}

func messageFor(field, tag string) string {
	if byTag, ok := rules[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
		if msg, ok := byTag[anyTag]; ok {
			return msg
		}
	}

	label := strings.ReplaceAll(field, "_", " ")
	if tag == "required" {
		return label + " is required"
	}

	return label + " is invalid"
}
