// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package consts

const ConnextABI = `
[
	{
		"inputs": [
			{"internalType": "uint32", "name": "_destination", "type": "uint32"},
			{"internalType": "address", "name": "_to", "type": "address"},
			{"internalType": "address", "name": "_asset", "type": "address"},
			{"internalType": "address", "name": "_delegate", "type": "address"},
			{"internalType": "uint256", "name": "_amount", "type": "uint256"},
			{"internalType": "uint256", "name": "_slippage", "type": "uint256"},
			{"internalType": "bytes", "name": "_callData", "type": "bytes"},
			{"internalType": "uint256", "name": "_relayerFee", "type": "uint256"}
		],
		"name": "xcall",
		"outputs": [{"internalType": "bytes32", "name": "", "type": "bytes32"}],
		"stateMutability": "payable",
		"type": "function"
	}
]
`
