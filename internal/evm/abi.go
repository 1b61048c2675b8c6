package evm

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Subset of the IBCHandler ABI the relayer calls.
const handlerABI = `[
  {
    "type": "function",
    "name": "registerClient",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "clientType", "type": "string", "internalType": "string"},
      {"name": "client", "type": "address", "internalType": "contract IClient"}
    ],
    "outputs": []
  },
  {
    "type": "function",
    "name": "createClient",
    "stateMutability": "nonpayable",
    "inputs": [
      {
        "name": "msg_",
        "type": "tuple",
        "internalType": "struct IBCMsgs.MsgCreateClient",
        "components": [
          {"name": "clientType", "type": "string", "internalType": "string"},
          {"name": "height", "type": "uint64", "internalType": "uint64"},
          {"name": "clientStateBytes", "type": "bytes", "internalType": "bytes"},
          {"name": "consensusStateBytes", "type": "bytes", "internalType": "bytes"}
        ]
      }
    ],
    "outputs": []
  },
  {
    "type": "function",
    "name": "updateClient",
    "stateMutability": "nonpayable",
    "inputs": [
      {
        "name": "msg_",
        "type": "tuple",
        "internalType": "struct IBCMsgs.MsgUpdateClient",
        "components": [
          {"name": "clientId", "type": "string", "internalType": "string"},
          {"name": "header", "type": "bytes", "internalType": "bytes"}
        ]
      }
    ],
    "outputs": []
  }
]`

// Subset of the IBCHost ABI: the event emitted for every created client.
const hostABI = `[
  {
    "type": "event",
    "name": "GeneratedClientIdentifier",
    "anonymous": false,
    "inputs": [
      {"name": "", "type": "string", "indexed": false, "internalType": "string"}
    ]
  }
]`

const (
	methodRegisterClient = "registerClient"
	methodCreateClient   = "createClient"
	methodUpdateClient   = "updateClient"

	eventGeneratedClientIdentifier = "GeneratedClientIdentifier"
)

var (
	parsedHandlerABI = mustParseABI(handlerABI)
	parsedHostABI    = mustParseABI(hostABI)
)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return parsed
}
