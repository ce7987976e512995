// Package metadata reads embedded image tags and derives the capture time
// ("date taken") used to route a picture into its year-month folder.
package metadata
