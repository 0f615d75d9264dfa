// Package notification persists admin announcements shown in merchant
// dashboards. Targeting is stored (audience, plan key, store list) but
// delivery and rendering live outside this backend.
package notification
