// Package config manages user-level settings stored at ~/.rave/config.yaml,
// overridable through RAVE_* environment variables. Its main job is locating
// the directory of bundled jars that "rave create" copies into new projects.
package config
