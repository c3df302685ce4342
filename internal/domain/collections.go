package domain

// Collection keys in the key-value store. Every value is a JSON-encoded array
// of the collection's record type.
const (
	KeyCustomers      = "customers"
	KeyProducts       = "products"
	KeyCategories     = "product_categories"
	KeyServiceCases   = "service_cases"
	KeyReminders      = "reminders"
	KeyChecklistItems = "checklist_items"
	KeyServiceImages  = "service_images"
	KeyServiceLogs    = "service_log_entries"
	KeySessionUser    = "@ServiceApp:user"
	KeySessionToken   = "@ServiceApp:token"
	KeyUsers          = "@ServiceApp:users"
)

// CollectionKeys lists the record collections (session keys excluded).
var CollectionKeys = []string{
	KeyCustomers,
	KeyProducts,
	KeyCategories,
	KeyServiceCases,
	KeyReminders,
	KeyChecklistItems,
	KeyServiceImages,
	KeyServiceLogs,
}
