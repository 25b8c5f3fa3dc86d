package stages

// scriptedRandom replays queued draws and falls back to zero/false once a
// queue runs dry.
type scriptedRandom struct {
	ints     []int
	bools    []bool
	percents []bool
}

func (s *scriptedRandom) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}

	v := s.ints[0]
	s.ints = s.ints[1:]

	return min(v, max(1, n)-1)
}

func (s *scriptedRandom) Bool() bool {
	if len(s.bools) == 0 {
		return false
	}

	v := s.bools[0]
	s.bools = s.bools[1:]

	return v
}

func (s *scriptedRandom) Percent(int) bool {
	if len(s.percents) == 0 {
		return false
	}

	v := s.percents[0]
	s.percents = s.percents[1:]

	return v
}

// fixedRandom answers every draw the same way. Intn is clamped to its bound.
type fixedRandom struct {
	n       int
	b       bool
	percent bool
}

func (f fixedRandom) Intn(n int) int   { return min(f.n, max(1, n)-1) }
func (f fixedRandom) Bool() bool       { return f.b }
func (f fixedRandom) Percent(int) bool { return f.percent }

const sampleSource = `package com.example.payments;

import java.util.List;

@Service
public class TransactionProcessor {
    // running total
    private final List<Transaction> pending = new ArrayList<>();

    public boolean process(Transaction tx, Account from, Account to) {
        if (tx.getAmount() > 0 && from.getBalance() >= tx.getAmount() || tx.isForced()) {
            from.setBalance(from.getBalance() - tx.getAmount() * rateFor(from, to) / 100);
            to.setBalance(to.getBalance() + tx.getAmount());
            return true;
        }


        log.warn("rejected: " + tx.getId());
        return false;
    }
}
`
