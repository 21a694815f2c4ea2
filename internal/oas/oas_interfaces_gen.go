// Code generated by ogen, DO NOT EDIT.
package oas

type PlaceOrderRes interface {
	placeOrderRes()
}
