// Package config manages user-level settings stored at
// ~/.shellforge/config.yaml. It provides functions to load, read, and
// write configuration keys such as auto_yes and the update mirror URL.
package config
