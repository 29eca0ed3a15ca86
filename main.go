/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

package main

import (
	"fmt"

	"github.com/ajmanlove/hyperledger-sandbox/chaincode"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

func main() {
	if err := shim.Start(chaincode.New()); err != nil {
		fmt.Printf("Error starting ReinsuranceChaincode: %s", err)
	}
}
