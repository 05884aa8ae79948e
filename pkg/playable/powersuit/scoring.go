package powersuit

// highBid is the smallest bid that earns the doubled payout
const highBid = 7

// Score returns the round score for a bid and the tricks won.
// Making the bid pays 10 per trick bid (20 from a bid of 7 up), but winning
// twice the bid or more is penalised the same as missing it.
func Score(bid, won int) int {
	switch {
	case won < bid:
		return -10 * bid
	case won < 2*bid:
		if bid >= highBid {
			return 20 * bid
		}

		return 10 * bid
	default:
		return -10 * bid
	}
}
