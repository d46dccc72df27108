package handlers

// HandlerBundle groups the app's handlers for route registration.
type HandlerBundle struct {
	Reservation  *ReservationHandler
	Chat         *ChatHandler
	Activity     *ActivityHandler
	Venue        *VenueHandler
	Course       *CourseHandler
	Store        *StoreHandler
	Notification *NotificationHandler
	District     *DistrictHandler
}
