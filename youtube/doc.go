// Package youtube validates video URLs, extracts video IDs, and fetches
// caption tracks by scraping the watch page's embedded player response.
package youtube
