// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Client-facing messages. Internal failures never expose the underlying
// error.
const (
	msgInvalidJSON = "Invalid JSON was passed"
	msgServerError = "Server error. Please try again later."

	msgNoToken     = "Not authorized, no token."
	msgTokenFailed = "Not authorized, token failed."
	msgRateLimited = "Too many requests, please try again later."

	msgMissingFields     = "Please enter all required fields."
	msgPasswordsMismatch = "Passwords do not match."
	msgPasswordTooShort  = "Password must be at least 8 characters long."
	msgEmailTaken        = "An account with this email already exists."
	msgMissingLogin      = "Please enter email and password."
	msgInvalidCreds      = "Invalid credentials."
	msgUserNotFound      = "User not found."

	msgMissingShipmentFields = "Please enter all required shipment fields."
	msgTrackIDTaken          = "Shipment with this Track ID already exists."
	msgInvalidExpectedDate   = "Invalid expected date. Use YYYY-MM-DD or an RFC 3339 timestamp."
	msgInvalidShipmentID     = "Invalid shipment ID format."
	msgShipmentNotViewable   = "Shipment not found or you do not have permission to view it."
	msgShipmentNotUpdatable  = "Shipment not found or you do not have permission to update it."
	msgStatusRequired        = "New status is required."
	msgTransitionNotAllowed  = "This status change is not allowed."

	msgQuoteMissingFields = "Missing required fields"
	msgQuoteInvalidWeight = "Invalid weight"
	msgQuoteServerError   = "Server error"

	msgNotificationNotFound = "Notification not found or not authorized"
	msgNoRelatedEntity      = "Notification has no related entity"
	msgRelatedNotFound      = "Related entity not found"
)
