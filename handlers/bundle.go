package handlers

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	AdminAuth     *AdminAuthHandler
	Schedules     *ScheduleHandler
	Notifications *NotificationHandler
	Location      *LocationHandler
	Tenants       *TenantHandler
	Landlords     *LandlordHandler
	Invoices      *InvoiceHandler
	Classify      *ClassifyHandler
}
