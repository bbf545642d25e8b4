// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package consts

// HopL1BridgeABI covers the L1_Bridge entry point used to move funds to an L2
const HopL1BridgeABI = `
[
	{
		"inputs": [
			{"internalType": "uint256", "name": "chainId", "type": "uint256"},
			{"internalType": "address", "name": "recipient", "type": "address"},
			{"internalType": "uint256", "name": "amount", "type": "uint256"},
			{"internalType": "uint256", "name": "amountOutMin", "type": "uint256"},
			{"internalType": "uint256", "name": "deadline", "type": "uint256"},
			{"internalType": "address", "name": "relayer", "type": "address"},
			{"internalType": "uint256", "name": "relayerFee", "type": "uint256"}
		],
		"name": "sendToL2",
		"outputs": [],
		"stateMutability": "payable",
		"type": "function"
	}
]
`

// HopL2AMMABI covers the L2_AmmWrapper entry point used to leave an L2
const HopL2AMMABI = `
[
	{
		"inputs": [
			{"internalType": "uint256", "name": "chainId", "type": "uint256"},
			{"internalType": "address", "name": "recipient", "type": "address"},
			{"internalType": "uint256", "name": "amount", "type": "uint256"},
			{"internalType": "uint256", "name": "bonderFee", "type": "uint256"},
			{"internalType": "uint256", "name": "amountOutMin", "type": "uint256"},
			{"internalType": "uint256", "name": "deadline", "type": "uint256"},
			{"internalType": "uint256", "name": "destinationAmountOutMin", "type": "uint256"},
			{"internalType": "uint256", "name": "destinationDeadline", "type": "uint256"}
		],
		"name": "swapAndSend",
		"outputs": [],
		"stateMutability": "payable",
		"type": "function"
	}
]
`
