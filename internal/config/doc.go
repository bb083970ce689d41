// Package config manages user-level settings stored at ~/.lemonade/config.yaml.
// Every key can be overridden by a LEMONADE_-prefixed environment variable,
// and the file is validated against an embedded JSON schema on load and
// before each write. With no file and no environment the defaults reproduce
// the tool's fixed behavior: compiler "lemoc", the emoji starter layout.
package config
