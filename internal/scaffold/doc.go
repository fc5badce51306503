// Package scaffold generates new Rave robot projects. It powers the
// "rave create" command: it derives the robot's Ruby module name, parses the
// key=value options passed on the command line, renders the robot class,
// rackup config, App Engine descriptor and Warbler config from embedded
// templates, and copies the bundled jars into the project's lib directory.
//
// Generation is strictly sequential and stops at the first failing step.
// Nothing already created is removed when a later step fails.
package scaffold
