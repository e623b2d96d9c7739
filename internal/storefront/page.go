package storefront

import (
	"fmt"

	pkgerrors "github.com/mohit-1289/martx-backend/pkg/errors"
)

// Page identifies one of the navigable storefront pages.
type Page string

const (
	PageHome          Page = "home"
	PageProductDetail Page = "productDetail"
	PageCart          Page = "cart"
	PageCheckout      Page = "checkout"
	PageSuccess       Page = "success"
)

// ParsePage validates a page identifier coming from the outside.
func ParsePage(value string) (Page, error) {
	switch Page(value) {
	case PageHome, PageProductDetail, PageCart, PageCheckout, PageSuccess:
		return Page(value), nil
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown page %q", value))
}
