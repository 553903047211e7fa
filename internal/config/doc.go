// Package config manages uvm settings. Values come from, in increasing order of
// precedence: built-in defaults, the user config file at ~/.uvm/config.yaml,
// a project-local .env file, and UVM_* environment variables.
package config
