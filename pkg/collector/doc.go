// Package collector turns builder form submissions into email.Data.
//
// Fixed fields bind through pkg/binder; numbered fields (offer_title_1 to
// offer_title_5, footer_cta_text_1 to footer_cta_text_3 and so on) are read
// from the parsed form. Offers without vehicle, title and details are
// dropped, as are footer buttons missing text or link. Uploaded images are
// sniffed, size checked and handed to an ImageEncoder: inline data URLs by
// default, or public URLs from a file.Storage.
package collector
