// Package file stores uploaded email images and validates their content.
//
// LocalStorage writes below a directory served by the application itself;
// S3Storage uploads to a bucket (or an S3-compatible service) with public
// read access. Both return the public URL that ends up in the email markup.
//
// DetectImage and ValidateImage sniff the bytes instead of trusting the
// uploaded filename or header.
package file
