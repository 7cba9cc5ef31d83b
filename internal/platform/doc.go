// Package platform provides OS-level helpers: application data paths
// and directory management for the local host database.
package platform
