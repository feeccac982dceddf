// Package model holds the plain data types shared by the calculator, the
// simulator and the run store. It does not touch the filesystem or terminal.
package model
