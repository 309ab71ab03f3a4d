// Package articulo extracts the main readable content of a web article:
// its title, body markup and text, description, preview image, icon,
// keywords, RSS feed and a paywall indicator.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, charset/).
package articulo
