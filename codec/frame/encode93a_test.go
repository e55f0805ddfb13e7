/*
NAME
  encode93a_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

import (
	"errors"
	"testing"
)

func TestCompressOS93aType1AlwaysFails(t *testing.T) {
	var state StreamState
	_, _, err := CompressOS93aType1(nil, &state)
	if !errors.Is(err, ErrOS93aType1Unsupported) {
		t.Errorf("CompressOS93aType1 err = %v, want ErrOS93aType1Unsupported", err)
	}
}
