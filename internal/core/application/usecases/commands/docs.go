// Package commands contains the use cases that change dispatch state: recording
// routes, enqueuing orders and taking the next order for processing.
//
// Every command is built by a constructor that validates its input and marks it
// with a ConstructorGuard; handlers reject commands created any other way.
package commands
